package catalog_test

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/lines"
	"github.com/bjaus/lines/internal/catalog"
)

const danielOut = "Sgt. Pepper's Lonely Hearts Club Band (The Beatles)\nDark Side of the Moon (Pink Floyd)\n"

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestAlbumRender(t *testing.T) {
	t.Parallel()
	a := catalog.Album{Title: "Kind of Blue", Artist: "Miles Davis"}
	var buf bytes.Buffer
	require.NoError(t, a.Render(&buf))
	assert.Equal(t, "Kind of Blue (Miles Davis)", buf.String())
	assert.Equal(t, buf.String(), a.String())
	assert.True(t, lines.IsRenderer[catalog.Album]())
}

func TestAlbumStringMatchesRender(t *testing.T) {
	t.Parallel()
	tests := map[string]catalog.Album{
		"plain":      {Title: "Revolver", Artist: "The Beatles"},
		"empty":      {},
		"parens":     {Title: "Help! (Remastered)", Artist: "The Beatles (UK)"},
		"wide runes": {Title: "你好", Artist: "世界"},
	}
	for name, a := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, a.Render(&buf))
			assert.Equal(t, buf.String(), a.String())
		})
	}
}

func TestAlbumRenderError(t *testing.T) {
	t.Parallel()
	a := catalog.Album{Title: "Kind of Blue", Artist: "Miles Davis"}
	assert.ErrorIs(t, a.Render(&errWriter{}), errWriteFailed)
}

func TestDefault(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	u, err := c.Lookup("Daniel")
	require.NoError(t, err)
	assert.Equal(t, danielOut, u.Albums.String())
}

func TestDefaultIsFresh(t *testing.T) {
	t.Parallel()
	a := catalog.Default()
	a.Users[0].Albums[0].Title = "changed"
	b := catalog.Default()
	assert.Equal(t, "Sgt. Pepper's Lonely Hearts Club Band", b.Users[0].Albums[0].Title)
}

func TestUserAlbumAccess(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		get func(u *catalog.User) string
	}{
		"owned":    {get: func(u *catalog.User) string { return u.Albums.String() }},
		"borrowed": {get: func(u *catalog.User) string { return u.BorrowAlbums().String() }},
		"copied":   {get: func(u *catalog.User) string { return u.CopyAlbums().String() }},
		"taken":    {get: func(u *catalog.User) string { return u.TakeAlbums().String() }},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			u, err := catalog.Default().Lookup("Daniel")
			require.NoError(t, err)
			assert.Equal(t, danielOut, tc.get(u))
		})
	}
}

func TestUserCopyAlbumsIsIndependent(t *testing.T) {
	t.Parallel()
	u, err := catalog.Default().Lookup("Daniel")
	require.NoError(t, err)
	albums := u.CopyAlbums()
	albums[0].Title = "Revolver"
	assert.Equal(t, "Sgt. Pepper's Lonely Hearts Club Band", u.Albums[0].Title)
}

func TestUserBorrowAlbumsSeesOwner(t *testing.T) {
	t.Parallel()
	u, err := catalog.Default().Lookup("Daniel")
	require.NoError(t, err)
	view := u.BorrowAlbums()
	u.Albums[1].Artist = "Floyd"
	assert.Equal(t, "Floyd", view.At(1).Artist)
}

func TestUserTakeAlbums(t *testing.T) {
	t.Parallel()
	u, err := catalog.Default().Lookup("Daniel")
	require.NoError(t, err)
	albums := u.TakeAlbums()
	assert.Equal(t, 2, albums.Len())
	assert.Empty(t, u.Albums)
	assert.Empty(t, u.Albums.String())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	c, err := catalog.LoadFile(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Len(t, c.Users, 3)

	u, err := c.Lookup("Daniel")
	require.NoError(t, err)
	assert.Equal(t, danielOut, u.Albums.String())

	u, err = c.Lookup("Ada")
	require.NoError(t, err)
	assert.Equal(t, "Kind of Blue (Miles Davis)\n", u.BorrowAlbums().String())

	u, err = c.Lookup("Nobody")
	require.NoError(t, err)
	assert.Zero(t, u.Albums.Len())
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := catalog.LoadFile(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestLoadFileUnknownField(t *testing.T) {
	t.Parallel()
	_, err := catalog.LoadFile(filepath.Join("testdata", "unknown_field.yaml"))
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "unknown_field.yaml")
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"empty":          {input: "", want: "empty document"},
		"syntax":         {input: "users: [", want: "invalid catalog"},
		"wrong shape":    {input: "users: hello", want: "invalid catalog"},
		"no user name":   {input: "users:\n  - albums: []\n", want: "user 1 has no name"},
		"no album title": {input: "users:\n  - name: A\n    albums:\n      - artist: X\n", want: `album 1 of "A" needs a title and an artist`},
		"no album artist": {
			input: "users:\n  - name: A\n    albums:\n      - title: T\n      - title: U\n        artist: V\n",
			want:  `album 1 of "A" needs a title and an artist`,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadReaderError(t *testing.T) {
	t.Parallel()
	_, err := catalog.Load(io.MultiReader(strings.NewReader("users:\n"), &errReader{}))
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := catalog.Default()

	u, err := c.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "Daniel", u.Name)

	_, err = c.Lookup("Ringo")
	assert.ErrorIs(t, err, catalog.ErrUnknownUser)
	assert.Contains(t, err.Error(), `"Ringo"`)

	_, err = (&catalog.Catalog{}).Lookup("")
	assert.ErrorIs(t, err, catalog.ErrUnknownUser)
}

func TestLookupReturnsOwner(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	u, err := c.Lookup("Daniel")
	require.NoError(t, err)
	u.TakeAlbums()
	assert.Empty(t, c.Users[0].Albums)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errWriteFailed }
