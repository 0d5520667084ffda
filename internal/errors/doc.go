// Package errors provides structured errors for the questlog service.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Repositories return coded errors, orchestrators wrap them
// with business context, and the CLI prints GetMessage for the user.
//
// # Basic Usage
//
//	err := errors.NotFound("quest not found").WithMeta("quest_id", id)
//
//	if err := repo.Put(ctx, profile); err != nil {
//	    return errors.Wrap(err, "failed to save profile")
//	}
//
// # Error Checking
//
//	if errors.IsAlreadyExists(err) {
//	    // skill was unlocked by an earlier transition
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// # Codes
//
//   - NotFound: quest, monster, skill or profile missing
//   - InvalidArgument: malformed input
//   - AlreadyExists: duplicate record (e.g. skill already unlocked)
//   - FailedPrecondition: action not allowed in the current state
//   - Internal: storage or encoding failures
//   - Unavailable: backing store unreachable
package errors
