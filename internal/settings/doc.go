// Package settings assembles the Sons of the Forest dedicated server
// configuration from environment variables.
//
// Fields are declared in three ordered tables:
//   - [BaseFields]: top-level settings, always written, defaulted when unset;
//   - [GameFields]: the "GameSettings" map, written only when set;
//   - [CustomGameModeFields]: the "CustomGameModeSettings" map, written only
//     when set.
//
// Each field carries a [Kind] that selects its coercion. Booleans are true
// only for a case-insensitive "true"; numbers fall back to their default
// when unset or empty; enum fields reject any value outside their allowed
// set with a [ValidationError].
package settings
