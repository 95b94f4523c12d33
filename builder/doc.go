// Package builder generates deterministic social-network fixtures as ordered
// adjacency mappings: paths, rings, stars, cliques and seeded random networks.
//
// Constructors compose. Build applies them in order to one draft, so two
// constructors that produce the same name share that person:
//
//	m, err := builder.Build(
//	    []builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("p"))},
//	    builder.Path(4),
//	    builder.Star(3),
//	)
//
// By default every link is written in both directions, the way a friendship
// graph is usually served. WithOneWay writes only the forward entry, which
// yields acyclic chains for the depth-first cycle flag.
//
// Determinism: equal constructors, options and seed give an identical
// mapping, key order included.
package builder
