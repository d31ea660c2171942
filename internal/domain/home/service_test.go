package home

import (
	"context"
	"errors"
	"testing"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/ports/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	pupsona dogs.Pupsona
	weather WeatherAlert
	err     error
}

func (f fakeRepo) Pupsona(context.Context) (dogs.Pupsona, error) { return f.pupsona, f.err }
func (f fakeRepo) Weather(context.Context) (WeatherAlert, error) { return f.weather, nil }

type feedRepo struct{ posts []feed.Post }

func (f feedRepo) List(context.Context) ([]feed.Post, error) { return f.posts, nil }

type notifRepo struct{ items []notifications.Notification }

func (n notifRepo) List(context.Context) ([]notifications.Notification, error) { return n.items, nil }

type noReads struct{}

func (noReads) ReadIDs(context.Context, string) (map[int]bool, error) { return map[int]bool{}, nil }
func (noReads) MarkRead(context.Context, string, []int) error         { return nil }

func newService(repo Repository) *Service {
	return NewService(
		repo,
		feed.NewService(feedRepo{posts: []feed.Post{{ID: 1, Username: "max_the_retriever"}}}),
		notifications.NewService(notifRepo{items: []notifications.Notification{{ID: 1}, {ID: 2, Read: true}}}, noReads{}),
	)
}

func TestScreen_AggregatesAllSections(t *testing.T) {
	svc := newService(fakeRepo{
		pupsona: dogs.Pupsona{Name: "Buddy", Gender: dogs.GenderMale},
		weather: WeatherAlert{Condition: "SUNNY", TemperatureF: 72},
	})

	sc, err := svc.Screen(context.Background(), "guest")
	require.NoError(t, err)

	assert.Equal(t, "Buddy", sc.Pupsona.Name)
	assert.Equal(t, assets.DefaultPupsona, sc.Pupsona.Avatar, "empty avatar falls back")
	assert.Equal(t, ConditionSunny, sc.Weather.Condition)
	require.Len(t, sc.Posts, 1)
	assert.Equal(t, assets.DefaultAvatar, sc.Posts[0].Avatar)
	assert.Equal(t, 1, sc.Notifications.Unread)
}

func TestScreen_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	svc := newService(fakeRepo{err: boom})

	_, err := svc.Screen(context.Background(), "guest")
	require.ErrorIs(t, err, boom)
}

func TestParseCondition(t *testing.T) {
	assert.Equal(t, ConditionRainy, ParseCondition(" rainy "))
	assert.Equal(t, ConditionSunny, ParseCondition("hail"))
}
