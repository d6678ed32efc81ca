// Package xbytes implements trimming, splitting, joining, partitioning,
// affix stripping, substring replacement and ASCII case conversion over
// byte slices.
//
// Two result shapes are produced:
//
//   - views: sub-slices of the caller's buffer, created with a full slice
//     expression so their capacity ends where their length ends. Appending
//     to a view reallocates rather than overwriting the caller's bytes.
//     Views share memory with the input, so writes to the input are visible
//     through them.
//   - owned slices: freshly allocated and never aliasing an input.
//
// Split, Fields, Partition, RPartition, StripPrefix and StripSuffix return
// views. Trim, Join, ReplaceFirst, ReplaceAll, Lowercase and Uppercase
// return owned slices. Functions named *InPlace mutate the slice handed in.
//
// Misuse that would otherwise loop forever or silently truncate data panics
// with a *ContractError. Every other condition, such as a separator that is
// not found, is expressed through the normal return value.
package xbytes
