// Command bindump inspects property-bag (.bin) files: it prints their
// contents as text or JSON, summarizes them, and hashes names for building
// dictionaries.
package main

func main() {
	execute()
}
