// Package wrapper exposes the public contracts for the loader and scanner
// stages of the projection pipeline. Implementations live under
// internal/wrapper to keep the x/net/html dependency hidden from consumers;
// construction helpers live in the top-level projection package to prevent
// import cycles.
package wrapper
