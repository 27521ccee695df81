package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	mapping map[string]string
	err     error
	calls   int
}

func (s *stubResolver) PhoneForLID(_ context.Context, lid string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.mapping[lid], nil
}

func TestResolveToPhone_MapsLIDToPhone(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)
	resolver := &stubResolver{mapping: map[string]string{
		"9876543210987654@lid": "5215512345678",
	}}

	jid, res := c.ResolveToPhone(context.Background(), resolver, "9876543210987654@lid")

	assert.Equal(t, "5215512345678@s.whatsapp.net", jid)
	assert.Equal(t, ResolvedPhone, res)
	assert.Equal(t, 1, resolver.calls)
}

func TestResolveToPhone_NonLIDSkipsResolver(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)
	resolver := &stubResolver{}

	jid, res := c.ResolveToPhone(context.Background(), resolver, "123@s.whatsapp.net")

	assert.Equal(t, "123@s.whatsapp.net", jid)
	assert.Equal(t, NotLinked, res)
	assert.Zero(t, resolver.calls)
}

func TestResolveToPhone_UnknownLIDKeepsOriginal(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)
	resolver := &stubResolver{mapping: map[string]string{}}

	jid, res := c.ResolveToPhone(context.Background(), resolver, "9876543210987654@lid")

	assert.Equal(t, "9876543210987654@lid", jid)
	assert.Equal(t, NotFound, res)
}

func TestResolveToPhone_ResolverErrorKeepsOriginal(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)
	resolver := &stubResolver{err: errors.New("db closed")}

	jid, res := c.ResolveToPhone(context.Background(), resolver, "9876543210987654@lid")

	assert.Equal(t, "9876543210987654@lid", jid)
	assert.Equal(t, Failed, res)
}

func TestResolveToPhone_NilResolver(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)

	jid, res := c.ResolveToPhone(context.Background(), nil, "9876543210987654@lid")

	assert.Equal(t, "9876543210987654@lid", jid)
	assert.Equal(t, NotFound, res)
}

func TestResolveToPhone_BareNumberAnswerIsCanonicalized(t *testing.T) {
	c := NewCanonicalizer(lowercaseServerNormalizer)
	resolver := &stubResolver{mapping: map[string]string{
		"111@lid": "+52 155 999",
	}}

	jid, res := c.ResolveToPhone(context.Background(), resolver, "111@lid")

	assert.Equal(t, "52155999@s.whatsapp.net", jid)
	assert.Equal(t, ResolvedPhone, res)
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "resolved", ResolvedPhone.String())
	assert.Equal(t, "not_linked", NotLinked.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "failed", Failed.String())
}
