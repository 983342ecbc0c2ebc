package clipvault

import "encoding/json"

// Canvas node geometry.
const (
	canvasNodeWidth  = 460
	canvasNodeHeight = 360
	canvasNodeGap    = 40
)

// CanvasNode is a node of a JSON canvas file.
type CanvasNode struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
	Text   string `json:"text,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CanvasEdge connects two canvas nodes.
type CanvasEdge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide"`
}

// Canvas is the document stored in a .canvas file.
type Canvas struct {
	Nodes []CanvasNode `json:"nodes"`
	Edges []CanvasEdge `json:"edges"`
}

// BuildCanvas lays out a link node for pageURL and a text node for text side
// by side, joined by an edge when both exist. Either may be empty.
func BuildCanvas(pageURL, text string) Canvas {
	c := Canvas{Nodes: []CanvasNode{}, Edges: []CanvasEdge{}}

	if pageURL != "" {
		c.Nodes = append(c.Nodes, CanvasNode{
			ID: "1", Type: "link", URL: pageURL,
			Width: canvasNodeWidth, Height: canvasNodeHeight,
		})
	}
	if text != "" {
		x := 0
		if pageURL != "" {
			x = canvasNodeWidth + canvasNodeGap
		}
		c.Nodes = append(c.Nodes, CanvasNode{
			ID: "2", Type: "text", Text: text, X: x,
			Width: canvasNodeWidth, Height: canvasNodeHeight,
		})
	}
	if pageURL != "" && text != "" {
		c.Edges = append(c.Edges, CanvasEdge{
			ID: "e1", FromNode: "1", FromSide: "right", ToNode: "2", ToSide: "left",
		})
	}
	return c
}

// JSON encodes the canvas.
func (c Canvas) JSON() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
