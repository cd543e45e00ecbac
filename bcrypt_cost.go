//go:build !race

package accounts

// Cost factor of 10 keeps hashing slow enough for credential storage while
// staying inside ordinary request timeouts.
func passwordHashCost() int {
	return 10
}
