// Package field declares the shape of a form: one Descriptor per field key,
// collected in a Set.
//
// A Descriptor is a tagged union. KindIndependent fields validate their own
// parsed value; KindDependent fields also receive the current parsed value of
// the field named by DependsOn. The generic constructors (Text, Of,
// TextDependsOn, OfDependsOn) keep validators typed at the call site while the
// engine works with erased values:
//
//	set := field.Set{
//		"mobile": field.Text(mobilePattern.MatchString, "Invalid mobile"),
//		"confirmMobile": field.TextDependsOn("mobile", func(v, mobile string) bool {
//			return v == mobile
//		}, "Numbers do not match"),
//		"age": field.Of(parseAge, func(n int) bool { return n >= 18 }, "Too young").Optional(),
//	}
//
// Set.Validate rejects malformed sets (unknown or cyclic dependencies, type
// mismatches between a dependency's parsed value and the dependent validator)
// so the engine never has to guess at runtime.
package field
