/*
Package sqldataset provides methods to load datasets from tables on SQL
databases and to store datasets on them.

A dataset table has a TEXT column for every attribute, in attribute order,
and a TEXT column for the response. Access to the database goes through an
Adapter, with implementations for SQLite3 (sqlite3adapter) and PostgreSQL
(pgadapter).
*/
package sqldataset
