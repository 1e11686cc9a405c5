// Package view holds the UI state machines shared by every portfolio
// section: a paginated, filterable collection, a windowed carousel and a
// single-item detail overlay.
//
// Controllers are plain values with explicit transition methods. They do
// not render anything and are not safe for concurrent use; each one is
// owned by the section view that created it.
package view
