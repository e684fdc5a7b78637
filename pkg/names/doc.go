// Package names generates random, human-readable names such as
// "rusty-nail" or "pushy-pencil-5602" for containers, projects and other
// ephemeral resources.
//
// A name is built by picking an adjective and a noun, joining them with a
// Casing, optionally appending a number according to a Naming strategy, and
// finally applying a Length policy.
//
// The quickest way in is the default generator:
//
//	g := names.Default()
//	name, _ := g.Next() // "imaginary-roll"
//
// Custom configurations go through Config and New, or the fluent Builder:
//
//	g, err := names.NewBuilder().
//		Casing(names.Casing{Kind: names.CamelCase}).
//		Naming(names.ZeroPaddedNaming(2, names.Underscore)).
//		Length(names.TruncateTo(20)).
//		Build()
//
// Build fails with ErrAdjectivesEmpty or ErrNounsEmpty for empty word
// lists, *UninitializedFieldError for explicitly unset fields and
// *ValidationError for out-of-range values. Once built, a Generator never
// fails except when a Reroll policy exhausts its attempt cap.
//
// Config and Generator encode to JSON and YAML using the keys adjectives,
// nouns, naming, casing and length; missing keys take their defaults. The
// random source is never encoded.
//
// A Generator is not safe for concurrent use.
package names
