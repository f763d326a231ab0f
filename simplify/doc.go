// Package simplify runs one complete K-map request: validate the input,
// build the map, minimize, rewrite in literal notation and check the result.
//
// A Service is configured once with functional options and is safe for
// concurrent use:
//
//	svc := simplify.New(simplify.WithLogger(logger))
//	res, err := svc.Simplify(ctx, simplify.Request{
//		Variables: 4,
//		Minterms:  []int{0, 2, 5, 7, 8, 10, 13, 15},
//		DontCares: []int{1, 3},
//		Form:      "SOP",
//	})
//	// res.Literal == "(B'.D') + (B.D)"
//
// Every request gets a UUID that appears in the logs and in Result.ID.
// Outcomes are counted on the Prometheus registerer given to WithRegisterer.
package simplify
