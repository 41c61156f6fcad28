package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestSha512String(t *testing.T) {
	const empty = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	if got := Sha512String(""); got != empty {
		t.Errorf("hash of empty string is wrong: %s", got)
	}
	if Sha512String("a") == Sha512String("b") {
		t.Error("different inputs must not collide")
	}
}

func TestRandSalt(t *testing.T) {
	a := RandSalt(60)
	b := RandSalt(60)
	if a == b {
		t.Error("two salts should not repeat")
	}
	if len(a) == 0 {
		t.Error("empty salt")
	}
}

func TestValidSlug(t *testing.T) {
	for _, slug := range []string{"go", "cooking-tips", "g0-lang"} {
		if !ValidSlug(slug) {
			t.Errorf("%q should be a valid slug", slug)
		}
	}
	for _, slug := range []string{"", "Go", "two words", "trailing-", "-leading", "uni/code"} {
		if ValidSlug(slug) {
			t.Errorf("%q should not be a valid slug", slug)
		}
	}
}

func TestCreateThumb(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	var in bytes.Buffer
	if err := jpeg.Encode(&in, src, nil); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	result, err := CreateThumb(50, &in, &out)
	if err != nil {
		t.Fatalf("thumb creation failed: %v", err)
	}
	if result.OldX != 200 || result.OldY != 100 {
		t.Errorf("original size not preserved: %dx%d", result.OldX, result.OldY)
	}
	if result.NewX > 50 || result.NewY > 50 {
		t.Errorf("thumbnail exceeds the bound: %dx%d", result.NewX, result.NewY)
	}
	if int64(out.Len()) != result.ThumbSize || result.ThumbSize == 0 {
		t.Errorf("reported size %d does not match written %d", result.ThumbSize, out.Len())
	}
}
