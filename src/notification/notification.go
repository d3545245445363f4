package notification

import (
	"log"

	"screen-edge-offsets/src/edges"
)

// Title is used for every dialog the application shows.
const Title = "Screen Edge Offsets"

// ShowResult displays the distances in a blocking dialog and returns after
// the user dismisses it.
func ShowResult(d edges.Distances) error {
	log.Printf("Showing result dialog: %s", d)
	return showResult(Title, resultText(d))
}

func resultText(d edges.Distances) string {
	return d.Message()
}
