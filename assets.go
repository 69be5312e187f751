package tilery

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureID is an opaque handle into an [Assets] registry.
type TextureID int

// placeholderTexture is the sentinel returned for unknown texture
// names. It resolves to a 1×1 white image.
const placeholderTexture TextureID = -1

// white placeholder singleton (no sync.Once — tilery is single-threaded)
var whiteImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// Assets is the texture registry: it decodes image files once, keeps
// the drawable handles, and resolves path names and tile palette
// indices to [TextureID] values. Blitting uses ebiten's default
// source-over alpha blending.
type Assets struct {
	ids      map[string]TextureID
	tiles    []TextureID
	textures []*ebiten.Image
}

// NewAssets returns an empty registry.
func NewAssets() *Assets {
	return &Assets{ids: make(map[string]TextureID)}
}

// AddTexture decodes the image file at p and registers it under p.
func (a *Assets) AddTexture(p string) (TextureID, error) {
	img, _, err := ebitenutil.NewImageFromFile(p)
	if err != nil {
		return placeholderTexture, fmt.Errorf("tilery: failed to load texture %q: %w", p, err)
	}

	id := TextureID(len(a.textures))
	a.textures = append(a.textures, img)
	a.ids[p] = id
	return id, nil
}

// AddTile registers the image file at p as the next tile palette entry.
func (a *Assets) AddTile(p string) error {
	id, err := a.AddTexture(p)
	if err != nil {
		return err
	}
	a.tiles = append(a.tiles, id)
	return nil
}

// LoadDir registers every image file directly inside dir, in name
// order. When asTiles is set the files also become the tile palette,
// so the palette order is the file name order.
func (a *Assets) LoadDir(dir string, asTiles bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("tilery: failed to read texture dir %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if asTiles {
			err = a.AddTile(p)
		} else {
			_, err = a.AddTexture(p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// TextureID resolves a registered path name. Unknown names log a
// warning and resolve to the white placeholder rather than failing:
// a missing texture is visible on screen but never fatal.
func (a *Assets) TextureID(name string) TextureID {
	if id, ok := a.ids[name]; ok {
		return id
	}
	log.Printf("tilery: texture %q not registered, using white placeholder", name)
	return placeholderTexture
}

// TileTexture resolves a tile's palette entry. Empty tiles have no
// texture and panic; callers skip empty cells before drawing.
func (a *Assets) TileTexture(t Tile) TextureID {
	return a.tiles[t.Index()]
}

// TileCount returns the number of tile palette entries.
func (a *Assets) TileCount() int {
	return len(a.tiles)
}

// Image returns the drawable for id, or the white placeholder for the
// sentinel.
func (a *Assets) Image(id TextureID) *ebiten.Image {
	if id == placeholderTexture {
		return ensureWhiteImage()
	}
	return a.textures[id]
}
