package csrand

import (
	"github.com/gofrs/uuid"
)

// UUID4 returns a random (version 4) UUID per RFC 4122.
//
// 122 of the UUID's 128 bits are drawn from the entropy source;
// the remaining six carry the version and variant markers.
func (s Sampler) UUID4() (uuid.UUID, error) {
	var u uuid.UUID
	if err := s.fill(u[:]); err != nil {
		return uuid.Nil, err
	}
	u.SetVersion(uuid.V4)
	u.SetVariant(uuid.VariantRFC4122)
	return u, nil
}

// UUID4 returns a random (version 4) UUID drawn from
// crypto/rand.Reader.
func UUID4() (uuid.UUID, error) {
	return defaultSampler.UUID4()
}
