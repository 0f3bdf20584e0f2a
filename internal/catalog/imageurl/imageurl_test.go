package imageurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePassesThroughUnlistedHosts(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://cdn.shop.example.net/products/1.jpg",
		"https://i.imgur.com/abc123.png",
		"http://images.store.io/a.webp?w=300&h=300",
	}
	for _, u := range urls {
		require.Equal(t, u, Sanitize(u))
	}
}

func TestSanitizeMapsDeniedHostsToPlaceholder(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://placeimg.com/640/480/any",
		"https://example.com/img.jpg",
		"https://dummyimage.com/600x400/000/fff",
		"https://laravelpoint.com/uploads/x.png",
		"https://via.placeholder.com/150?text=hi",
		"https://cdn.via.placeholder.com/deep/path.jpg",
	}
	for _, u := range urls {
		require.Equal(t, Placeholder, Sanitize(u), u)
	}
}

func TestSanitizeMapsMalformedInputToPlaceholder(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"not a url",
		"://missing-scheme",
		"https://",
		"relative/path.jpg",
		"%zz",
	}
	for _, in := range inputs {
		require.Equal(t, Placeholder, Sanitize(in), "input %q", in)
	}
}

func TestCanOptimize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url  string
		want bool
	}{
		{"https://i.imgur.com/abc.jpg", true},
		{"https://images.unsplash.com/photo-1", true},
		{"https://picsum.photos/200/300", true},
		{"https://cdn.shop.example.net/1.jpg", false},
		{"https://via.placeholder.com/150", false},
		{"%zz", false},
		{"", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanOptimize(tc.url), tc.url)
	}
}

func TestIsExternal(t *testing.T) {
	t.Parallel()

	require.True(t, IsExternal("https://i.imgur.com/a.jpg"))
	require.False(t, IsExternal("http://localhost:3000/a.jpg"))
	require.False(t, IsExternal("http://127.0.0.1/a.jpg"))
	require.False(t, IsExternal("%zz"))
	require.False(t, IsExternal("/placeholder-image.jpg"))
}

func TestValid(t *testing.T) {
	t.Parallel()

	require.True(t, Valid("https://good.host/a.jpg"))
	require.False(t, Valid("blob:https://app/123"))
	require.False(t, Valid("a.jpg"))
	require.False(t, Valid(""))
}
