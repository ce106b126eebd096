// Package auth implements the credential and token lifecycle for a
// business backend: bcrypt password hashing, HS512 JWT issuance and
// validation, and an orchestrator that registers accounts, authenticates
// login attempts, and resolves bearer tokens back to accounts.
//
// Signing key:
//   - The key is derived exactly once from a configured secret (Base64 or
//     raw text) and passed explicitly into NewAuthenticator/NewTokenService.
//     Secrets shorter than the HS512 minimum are extended deterministically;
//     see DeriveSigningKey for the caveats of that fallback.
//
// Tokens:
//   - Tokens are stateless and non-revocable. Validity is determined solely
//     by signature and expiry at verification time; there is no server-side
//     session state and no revocation list.
//
// Storage:
//   - The orchestrator talks to a CredentialStore. NewUsersRepository
//     provides a Bun-backed implementation; absence is reported as a typed
//     not-found error, never a panic.
package auth
