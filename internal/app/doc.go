// Package app is the demo application: a user profile loaded asynchronously
// and a counter, driven through a flux store.
package app
