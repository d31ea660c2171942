package samples

import (
	"testing"

	"dog-life/internal/domain/thoughts"
	"dog-life/internal/ports/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIndex() map[string]assets.Metadata {
	out := map[string]assets.Metadata{}
	for _, m := range Assets() {
		out[m.Ref] = m
	}
	return out
}

func TestAssets_CoverEveryVoiceSample(t *testing.T) {
	idx := seedIndex()
	for _, ref := range thoughts.AllVoiceSamples() {
		m, ok := idx[ref]
		require.True(t, ok, "missing voice %s", ref)
		assert.Equal(t, assets.KindAudio, m.Kind)
		assert.Positive(t, m.Duration)
	}
}

func TestAssets_CoverEveryImageReference(t *testing.T) {
	idx := seedIndex()

	var refs []string
	for _, p := range Posts() {
		refs = append(refs, p.Avatar, p.Image)
	}
	refs = append(refs, Pupsona().Avatar)
	for _, q := range CommunityQuestions() {
		refs = append(refs, q.Avatar)
	}
	for _, p := range Providers() {
		refs = append(refs, p.Image)
		for _, r := range p.Reviews {
			refs = append(refs, r.UserAvatar)
		}
	}
	for _, p := range Profiles() {
		refs = append(refs, p.Image, p.OwnerImage)
	}
	for _, e := range Events() {
		refs = append(refs, e.Image)
	}
	refs = append(refs,
		assets.DefaultAvatar, assets.DefaultPostImage, assets.DefaultServiceImage,
		assets.DefaultDogImage, assets.DefaultOwnerImage, assets.DefaultEventImage,
		assets.DefaultPupsona, assets.DefaultAIAvatar, assets.Placeholder,
	)

	for _, ref := range refs {
		m, ok := idx[ref]
		if assert.True(t, ok, "missing image %s", ref) {
			assert.Equal(t, assets.KindImage, m.Kind, ref)
		}
	}
}

func TestSamples_ReturnFreshCopies(t *testing.T) {
	a := Providers()
	a[0].Tags[0] = "changed"
	assert.Equal(t, "Nail Trimming", Providers()[0].Tags[0])

	n := Notifications()
	n[0].Read = true
	assert.False(t, Notifications()[0].Read)
}
