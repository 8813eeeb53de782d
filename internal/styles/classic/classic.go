// Package classic registers the default transparent snake icon.
package classic

import (
	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/registry"
)

func init() {
	registry.Register("classic", icon.Classic)
}
