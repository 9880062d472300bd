// Package catwalk builds the catwalk ring that frames a bunker roof: a
// chamfered platform with a centered opening, a ledge the roof rests in,
// magnet holes, four corner walls and an engraved diamond walkway.
//
// What:
//
//	platform − opening ∪ ledge − ledge opening − magnet holes
//	∪ corner walls − walkway diamonds
//
//	The walkway is a layout.Grid of part.Diamond tiles at half pitch along X
//	with odd columns pushed half a pitch along Y, clipped to the ring between
//	the opening and the platform rim and sunk FloorHeight into the top.
//
// Lifecycle:
//
//	c := catwalk.New()
//	c.Interior.Length, c.Interior.Width = 114, 84
//	if err := c.Make(); err != nil { ... }
//	s, err := c.Build()
//
// Errors:
//
//	ErrInvalidCatwalk (wraps terrain.ErrInvalidGeometryParameter) for
//	dimensions that leave no ring, no ledge or no wall; terrain.ErrNotInitialized
//	for Build before Make.
package catwalk
