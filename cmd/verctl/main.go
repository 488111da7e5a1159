// Command verctl inspects the version resources of Windows executables.
package main

func main() {
	execute()
}
