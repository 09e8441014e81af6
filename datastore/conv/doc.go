/*
Package conv is the value conversion engine: pure, deterministic
converters between the storage-native value kinds and Go field types.

Scalar conversions pair each storage kind with value-typed and
pointer-typed Go destinations. The null rule is uniform across the
package: absent converts to the zero value for value-typed destinations
and nil for pointer and collection destinations, and nil converts back
to absent. Narrowing from the storage 64-bit integer truncates without
overflow checks.

List conversions are built once, generically, on the Builder capability:

	tags := conv.IntListToSet[int32](record.Get("tags"))

An absent list converts to nil; a present empty list converts to a
present empty collection. Slice and ordered-set destinations preserve
source order, sorted sets reorder by natural order, plain sets make no
ordering guarantee.

Object conversions delegate to a codec.Codec and are the only
conversions with an error path.
*/
package conv
