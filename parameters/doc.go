// Package parameters holds the flat key-value parameter registry that validated
// configuration is materialized into, plus a read-only HTTP view of it.
package parameters
