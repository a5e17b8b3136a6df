// Package validator provides small declarative validation rules.
//
// Each exported function builds a Rule: a deferred boolean Check paired with
// the ValidationError reported when it fails. Rules are evaluated with Apply,
// which collects every failure, or First, which stops at the first one.
// ValidationErrors implements error so results can be returned and inspected
// with errors.As.
//
// # Usage
//
//	err := validator.First(
//	    validator.RequiredString("name", name),
//	    validator.MaxGraphemes("name", name, 256),
//	    validator.NoControlChars("name", name),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[0].Field, verrs[0].Message, verrs[0].Value
//	}
//
// The package holds no state and every rule is safe for concurrent use.
package validator
