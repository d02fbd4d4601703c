package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Wireless Headphones": "wireless-headphones",
		"  Smart  Watch  ":    "smart-watch",
		"USB-C Cable (2m)":    "usb-c-cable-2m",
		"Café Brûlée":         "caf-br-l-e",
		"already-a-slug":      "already-a-slug",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestIsSortableColumn(t *testing.T) {
	assert.True(t, isSortableColumn("created_at"))
	assert.True(t, isSortableColumn("price"))
	assert.False(t, isSortableColumn("id; DROP TABLE products"))
	assert.False(t, isSortableColumn(""))
}
