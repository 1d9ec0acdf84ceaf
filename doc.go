// Package colf implements COLF, a self-describing columnar binary container,
// and the codec that converts between it and row-oriented text tables.
//
// A container is a single file: a header (magic "COLF", version, column
// count, row count and one metadata record per column) followed by one
// compressed block per column, laid out contiguously in declaration order.
// Column types are inferred from the text values (Int32, then Float64, then
// String) and each column is deflate-compressed independently, so readers
// fetch and decompress only the columns they ask for.
//
// # Writing
//
//	table, _ := colf.NewTable([]string{"id", "value", "name"})
//	table.AppendRow([]string{"1", "2.5", "Alice"})
//	table.AppendRow([]string{"2", "3.5", "Bob"})
//
//	w := colf.NewWriter()
//	err := w.WriteFile("data.colf", table)
//
// # Reading
//
//	r, err := colf.Open("data.colf")
//	defer r.Close()
//
//	cols, err := r.ReadColumns(ctx, []string{"name"})
//	fmt.Println(cols["name"].Strings) // ["Alice", "Bob"]
//
// Containers can also live in object storage; see the blobstore package:
//
//	store, _ := s3.New(ctx, "my-bucket")
//	r, err := colf.OpenStore(ctx, store, "data.colf")
//
// Only the requested column blocks are fetched, which maps onto ranged GETs.
//
// # Errors
//
// Failures surface as distinct conditions callers can branch on:
// ErrInvalidMagic, ErrInvalidVersion and ErrInvalidHeader for malformed
// containers, column.ErrUnknownType for an unrecognized type tag,
// compress.ErrSizeMismatch when a decompressed block does not match its
// declared raw size (the format's only integrity check), and SchemaError for
// text rows whose field count does not match the header.
package colf
