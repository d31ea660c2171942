package feed

// Post es una publicación del "Pawsome Feed".
type Post struct {
	ID       int
	Username string
	Avatar   string
	Image    string
	Caption  string
	Likes    int
	Comments int
	TimeAgo  string
}
