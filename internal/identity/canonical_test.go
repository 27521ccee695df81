package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lowercaseServerNormalizer(jid string) (string, error) {
	at := strings.LastIndex(jid, "@")
	if at < 0 {
		return jid, nil
	}
	return jid[:at+1] + strings.ToLower(jid[at+1:]), nil
}

func TestCanonical_BareNumberBecomesPhoneJID(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	assert.Equal(t, "5215512345678@s.whatsapp.net", c.Canonical("5215512345678"))
	assert.Equal(t, "5215512345678@s.whatsapp.net", c.Canonical("+52 1 55 1234-5678"))
}

func TestCanonical_GroupPassesThrough(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	assert.Equal(t, "120363123456789@g.us", c.Canonical("120363123456789@g.us"))
}

func TestCanonical_LIDStaysOpaque(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	assert.Equal(t, "9876543210987654@lid", c.Canonical("9876543210987654@lid"))
	assert.Equal(t, "9876543210987654@lid", c.Canonical("9876543210987654@LID"))
}

func TestCanonical_PhoneJIDPreserved(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	assert.Equal(t, "123@s.whatsapp.net", c.Canonical("123@s.whatsapp.net"))
	assert.Equal(t, "123@s.whatsapp.net", c.Canonical("  123@S.WHATSAPP.NET  "))
}

func TestCanonical_EmptyAndNonDigit(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	assert.Equal(t, "", c.Canonical(""))
	assert.Equal(t, "", c.Canonical("   "))
	assert.Equal(t, "abc", c.Canonical("abc"))
}

func TestCanonical_NilNormalizer(t *testing.T) {
	c := NewCanonicalizer(nil)

	assert.Equal(t, "123@s.whatsapp.net", c.Canonical("123@s.whatsapp.net"))
	assert.Equal(t, "123@s.whatsapp.net", c.Canonical("123"))
}

func TestCanonical_NormalizerErrorFallsBackToRaw(t *testing.T) {
	c := NewCanonicalizer(func(jid string) (string, error) {
		return "", assert.AnError
	})

	assert.Equal(t, "123@s.whatsapp.net", c.Canonical("123@s.whatsapp.net"))
}

func TestSuffixPredicates(t *testing.T) {
	assert.True(t, IsPhone("1@s.whatsapp.net"))
	assert.True(t, IsPhone("1@S.Whatsapp.Net"))
	assert.True(t, IsLID("1@lid"))
	assert.True(t, IsGroup("1@g.us"))
	assert.False(t, IsPhone("1@lid"))
	assert.False(t, IsLID("lid"))
}
