package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 900.0, RoundMoney(3000*0.30))
	assert.Equal(t, 33.33, RoundMoney(100.0/3))
	assert.Equal(t, 0.1, RoundMoney(0.1))
	assert.Equal(t, 765.45, RoundMoney(850.50*3*0.30))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "top-10-safari-tips", Slugify("Top 10 Safari Tips"))
	assert.Equal(t, "the-great-migration", Slugify("  The Great Migration!  "))
	assert.Equal(t, "whats-new-in-2026", Slugify("What's New in 2026?"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestGeneratePaymentReference(t *testing.T) {
	ref := GeneratePaymentReference()
	assert.True(t, strings.HasPrefix(ref, "PAY-"))
	assert.Len(t, strings.Split(ref, "-"), 4)
}
