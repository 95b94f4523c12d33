// Package linkgraph is a small social-network engine: people, their
// friendships, and the questions you ask about them.
//
// What is inside
//
//	core/     - Graph with a vertex view (for depth-first passes) and an
//	            adjacency index (for breadth-first levels), plus Connect
//	dfs/      - full-forest depth-first pass: three colors, clocks, cycle flag
//	bfs/      - level-synchronous breadth-first search over the adjacency index
//	network/  - ShowNetwork, ShowConnections, Connect reports and their text views
//	provider/ - loads the ordered adjacency mapping over HTTP or from JSON/YAML files
//	config/   - YAML + environment configuration with validation
//	builder/  - deterministic network fixtures (path, ring, star, clique, random)
//	cmd/linkgraph - the show_network / show_connections / connect CLI
//
// Quick start
//
//	m := core.NewAdjacencyMap(3)
//	m.Set("A", "B")
//	m.Set("B", "A", "C")
//	m.Set("C", "B")
//	svc, _ := network.NewService(core.NewGraph(m))
//	rep, _ := svc.ShowConnections(ctx, "A")
//	_ = rep.Render(os.Stdout)
//
// Input key order matters: it fixes depth-first root order, so every loader
// in provider/ preserves it.
package linkgraph
