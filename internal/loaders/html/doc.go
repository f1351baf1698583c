// Package html loads HTML files as plain text.
//
// Script, style and head content are discarded, block elements become
// paragraph breaks, and entities are decoded.
package html
