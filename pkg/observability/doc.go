/*
Package observability provides tools for monitoring a flux store.

It combines lifecycle hooks from several observers into one set and records
store events in memory for inspection.
*/
package observability
