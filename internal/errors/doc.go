// Package errors provides coded errors for the maze-api project.
//
// Every error carries a Code, a caller facing message, an optional cause and
// optional metadata. Codes map onto gRPC codes at the handler boundary.
//
// Three codes belong to the maze and agent core:
//
//   - CodeConfiguration: generation parameters are impossible. Returned before
//     any partial grid exists.
//   - CodePlacementExhausted: population ran out of free cells. The placement
//     that was made is still returned alongside the error.
//   - CodeNavigationUnavailable: the navigation port could not resolve a point
//     after bounded retries. Agents log it and go idle.
//
// The last two are recoverable (see IsRecoverable); nothing in the simulation
// tick loop is allowed to turn them into a crash.
//
// Creating errors:
//
//	err := errors.Configurationf("corridor width %d leaves no interior cell", cw)
//	err := errors.NotFound("maze not found").WithMeta("maze_id", id)
//
// Wrapping keeps the code of the cause:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load maze")
//	}
package errors
