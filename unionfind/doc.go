// Package unionfind implements a disjoint-set (union-find) forest over
// integer values, with union-by-rank and path compression.
//
// What:
//
//   - DisjointSet maintains a forest of equivalence classes; each class is a
//     tree of Nodes whose root is the class representative.
//   - MakeSet registers a value as a new singleton class (idempotent).
//   - Find returns a node's representative, compressing the walked path.
//   - Union merges two classes, attaching the shallower tree under the deeper.
//
// Why:
//
//   - Label equivalence tracking in connected-component labelling.
//   - Kruskal-style cycle detection, cluster merging, partition refinement.
//
// Complexity:
//
//   - MakeSet: O(1).
//   - Find / Union: amortized O(α(n)) (inverse Ackermann), effectively O(1),
//     due to path compression combined with union-by-rank.
//
// Each DisjointSet owns its node registry for its whole lifetime; construct a
// fresh one per analysis run to keep unrelated value spaces apart. A
// DisjointSet is not safe for concurrent use.
//
// All operations are total: there are no error conditions.
package unionfind
