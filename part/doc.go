// Package part holds the opaque sub-assemblies the layout engine tiles:
// blast doors, split doors, ladders, roof hatches, window frames, arches and
// floor tiles.
//
// Every assembly follows the same contract: exported Length/Width/Height
// (plus named tunables), Make() to build and memoize its pieces, Build() to
// return the finished solid centered on its local origin. Build before Make
// fails with terrain.ErrNotInitialized. A made assembly is a ready layout.Unit
// solid; the template's outward face is +Y.
package part
