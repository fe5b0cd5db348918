// Package errors provides coded errors for the recruit-api project.
//
// Every layer returns *Error values carrying a Code, a caller-facing Message,
// an optional Cause and optional metadata. Codes line up one-to-one with gRPC
// status codes so handlers can convert with ToGRPCError.
//
// Creating errors:
//
//	err := errors.NotFound("recruit not found")
//	err := errors.InvalidArgumentf("unknown stat: %s", stat)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to get recruit")
//	}
//
// Missing generation or calibration configuration is reported with
// ConfigurationMissing, a FailedPrecondition error that names the missing
// piece in its metadata. The engine never substitutes defaults for it:
//
//	if errors.IsConfigurationMissing(err) {
//	    // the embedding application forgot to wire a profile
//	}
//
// Configuration validation collects every field problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("max_rank", cal.MaxRank, 1, 10000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
