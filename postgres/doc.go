/*
Package postgres manages the database connection and the stores handlers
read and write through. As part of the connection process, all pending
migrations run against the target database. When the database is simply a
target for some testing, the public schema is dropped first.

Stores are narrow: each exposes only the queries its handlers need, with
gorm and PostgreSQL errors translated to the module's sentinel errors.
*/
package postgres
