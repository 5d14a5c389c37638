// Package catalog holds the album collections printed by the albums command.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/lines"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownUser    = errors.New("unknown user")
)

// Album is a single record in a user's collection.
type Album struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// Render writes the album as "title (artist)".
func (a Album) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s (%s)", a.Title, a.Artist)
	return err
}

func (a Album) String() string {
	var sb strings.Builder
	_ = a.Render(&sb)
	return sb.String()
}

// User owns a list of albums.
type User struct {
	Name   string            `yaml:"name"`
	Albums lines.List[Album] `yaml:"albums"`
}

// BorrowAlbums returns a read-only view of u's albums without copying them.
func (u *User) BorrowAlbums() lines.View[Album] {
	return u.Albums.View()
}

// CopyAlbums returns a copy of u's albums that the caller is free to modify.
func (u *User) CopyAlbums() lines.List[Album] {
	return u.Albums.Clone()
}

// TakeAlbums hands u's albums to the caller and leaves u with none.
func (u *User) TakeAlbums() lines.List[Album] {
	albums := u.Albums
	u.Albums = nil
	return albums
}

// Catalog is the set of users known to the albums command.
type Catalog struct {
	Users []User `yaml:"users"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Users: []User{
			{
				Name: "Daniel",
				Albums: lines.List[Album]{
					{Title: "Sgt. Pepper's Lonely Hearts Club Band", Artist: "The Beatles"},
					{Title: "Dark Side of the Moon", Artist: "Pink Floyd"},
				},
			},
		},
	}
}

// Load decodes a YAML catalog from r. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Lookup returns the user with the given name. An empty name selects the
// first user.
func (c *Catalog) Lookup(name string) (*User, error) {
	if name == "" && len(c.Users) > 0 {
		return &c.Users[0], nil
	}
	for i := range c.Users {
		if c.Users[i].Name == name {
			return &c.Users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUser, name)
}

func (c *Catalog) validate() error {
	for i, u := range c.Users {
		if u.Name == "" {
			return fmt.Errorf("%w: user %d has no name", ErrInvalidCatalog, i+1)
		}
		for j, a := range u.Albums {
			if a.Title == "" || a.Artist == "" {
				return fmt.Errorf("%w: album %d of %q needs a title and an artist", ErrInvalidCatalog, j+1, u.Name)
			}
		}
	}
	return nil
}
