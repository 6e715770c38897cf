package export

import "github.com/tsawler/inkwill/model"

// testDoc builds a single-page document with one layer containing two
// strokes of 5 and 3 points.
func testDoc() *model.Document {
	doc := model.NewDocument()
	black := doc.InternBrush(model.Brush{Color: model.Color{R: 0, G: 0, B: 0, A: 255}, Width: 1.5})
	red := doc.InternBrush(model.Brush{Color: model.Color{R: 255, G: 0, B: 0, A: 255}, Width: 2})

	page := model.NewPage(600, 800)
	layer := &model.Layer{Brush: model.NoBrush}

	s1 := &model.Stroke{Brush: black, AvgWidth: 1.5, End: 1}
	for i, c := range [][2]float64{{0, 0}, {1, 1}, {2, 1.5}, {3, 1}, {4, 0}} {
		s1.Points = append(s1.Points, model.Point{X: c[0], Y: c[1], Timestamp: float64(i)})
		s1.Widths = append(s1.Widths, 1.5)
	}
	layer.AddStroke(s1)

	s2 := &model.Stroke{Brush: red, AvgWidth: 2, End: 1}
	for i, c := range [][2]float64{{10, 10}, {11, 12}, {12.345, 10.5}} {
		s2.Points = append(s2.Points, model.Point{X: c[0], Y: c[1], Timestamp: float64(i)})
		s2.Widths = append(s2.Widths, 2)
	}
	layer.AddStroke(s2)

	page.AddLayer(layer)
	doc.AddPage(page)
	return doc
}

// multiPageDoc builds a document with n pages of one stroke each.
func multiPageDoc(n int) *model.Document {
	doc := model.NewDocument()
	brush := doc.InternBrush(model.Brush{Color: model.Color{R: 0, G: 0, B: 0, A: 255}, Width: 1})
	for i := 0; i < n; i++ {
		page := model.NewPage(100, 100)
		layer := &model.Layer{Brush: model.NoBrush}
		layer.AddStroke(&model.Stroke{
			Brush:    brush,
			AvgWidth: 1,
			Points: []model.Point{
				{X: float64(i), Y: 0},
				{X: float64(i) + 1, Y: 1, Timestamp: 1},
			},
			Widths: []float64{1, 1},
		})
		page.AddLayer(layer)
		doc.AddPage(page)
	}
	return doc
}
