// Package codec provides the standard encoding configuration for the
// tree-structured document format used for persisted entity and world
// state.
//
// Documents are CBOR (RFC 8949). The encoder uses Core Deterministic
// Encoding: sorted map keys, smallest integer encoding, no
// indefinite-length items, so the same logical record always produces
// identical bytes. The decoder ignores unknown map keys, which is what
// lets union arms and flattened record parts each pick out only the
// fields they declare.
//
// Value types that have more than one legal document shape implement
// cbor.Marshaler and cbor.Unmarshaler themselves and route through this
// package:
//
//	func (c ARGB) MarshalCBOR() ([]byte, error) {
//		return codec.Marshal(c.Floats())
//	}
//
// # Flattened records
//
// A record built from shared parts (a "breedable" part, a "tameable"
// part, the record's own fields) is stored as one flat map. MergeFields
// encodes each part and merges the resulting maps; a key produced by two
// parts is an error rather than a silent overwrite. SplitFields decodes
// the same flat map into every part.
package codec
