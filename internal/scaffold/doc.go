// Package scaffold turns a scaffold request into a plan of folders, files
// and notes using the stack registry, and carries that plan out: either as
// a preview document or by creating the paths on a filesystem. Resolution is
// pure and deterministic; only Apply touches disk.
package scaffold
