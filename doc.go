// Package membergen holds the error types shared by the member synthesis packages.
//
// The synthesis core lives under compiler/: compiler/prime issues the per-class
// hash multipliers, compiler/gen synthesizes the HashCode, Equal and String members
// and exposes the plugin hooks, and compiler/annotate decides the serialization and
// validation annotations of each column. Generated code depends only on
// runtime/hashcode.
package membergen
