/*
Package crew boots an urbanfix application.

A Crew wires the environment-driven configuration, logger, responder,
database connection, session store and router together, then runs the web
server until a shutdown signal arrives. Defaults come from environment
variables (a .env file is loaded automatically when present); options
passed to New overwrite them.

A minimal app:

	c, err := crew.New()
	if err != nil {
		log.Fatal(err)
	}

	// register routes and policies on c.Router

	log.Fatal(c.Embark())
*/
package crew
