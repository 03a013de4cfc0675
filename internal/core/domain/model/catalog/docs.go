// Package catalog provides the product catalog: item templates grouped by category.
package catalog
