// Package accounts provides a minimal account-authentication backend: bcrypt
// credential hashing, HMAC-signed JWT issuance and validation, and the
// register/login/profile-update orchestration that ties them together.
//
// Storage:
//   - Account and Profile are Bun models persisted through the shared
//     RepositoryManager. A profile row is created inside the same transaction
//     as its account so one exists if and only if the other does. Email and
//     username uniqueness is enforced by storage-level unique indexes; the
//     in-service duplicate lookup is a fast path only.
//
// Tokens:
//   - TokenService signs compact HS256 tokens carrying the account id as
//     subject plus an email claim. Tokens are stateless: there is no
//     revocation list, so a token valid by signature and expiry is accepted.
//
// HTTP:
//   - RegisterAuthRoutes mounts the JSON controller on any go-router router.
//     middleware/jwtware guards authenticated routes, placing validated
//     claims in router locals and (optionally) the request context.
package accounts
