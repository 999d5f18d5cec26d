// Package customer holds the Customer aggregate and the credit data that
// admission control evaluates orders against.
package customer
