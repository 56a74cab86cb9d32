package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyKeepsExtension(t *testing.T) {
	key := ObjectKey("Summer Banner.PNG")
	assert.True(t, strings.HasSuffix(key, ".png"), "got %q", key)

	key = ObjectKey("banner.webp")
	assert.True(t, strings.HasSuffix(key, ".webp"), "got %q", key)
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("banner")
	assert.NotEmpty(t, key)
	assert.False(t, strings.Contains(key, "."))
}

func TestObjectKeysDoNotCollide(t *testing.T) {
	assert.NotEqual(t, ObjectKey("banner.png"), ObjectKey("banner.png"))
}

func TestObjectURLJoins(t *testing.T) {
	s := &MinioStore{Bucket: "campaign-banner", PublicURL: "https://cdn.example.com"}
	assert.Equal(t,
		"https://cdn.example.com/campaign-banner/abc.png",
		s.objectURL("abc.png"),
	)
}
