// Package password hashes and verifies the admin passphrase with argon2id.
// MPINs are never hashed or stored; this package exists only for the admin
// login surface.
package password

import (
	"github.com/alexedwards/argon2id"
)

var policy = LoadParamsFromEnv()

// Hash returns a PHC string like `$argon2id$v=19$m=65536,t=3,p=1$...`
func Hash(plain string) (string, error) {
	p := argon2id.Params{
		Memory:      policy.Memory,
		Iterations:  policy.Iterations,
		Parallelism: policy.Parallelism,
		SaltLength:  policy.SaltLength,
		KeyLength:   policy.KeyLength,
	}
	return argon2id.CreateHash(plain, &p)
}

// Verify checks the passphrase against a stored PHC hash.
func Verify(plain, phc string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, phc)
}
