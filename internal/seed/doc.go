// Package seed turns one seed phrase into the independent random streams a
// simulation needs.
//
// Every round and every randomised seat gets its own ChaCha8 generator keyed
// by HKDF-SHA256 over the master secret, so a run replays exactly from its
// phrase and adding rounds or seats does not disturb the others.
package seed
