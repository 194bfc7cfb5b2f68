package button

import (
	"image"
	"image/color"

	"cpbutton/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

var labelColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

type buttonRenderer struct {
	button  *Button
	raster  *canvas.Raster
	label   *canvas.Text
	icon    *canvas.Image
	objects []fyne.CanvasObject
}

func newRenderer(button *Button) *buttonRenderer {
	renderer := &buttonRenderer{button: button}
	renderer.raster = canvas.NewRaster(renderer.draw)
	renderer.label = canvas.NewText(button.text, labelColor)
	renderer.label.Alignment = fyne.TextAlignCenter
	renderer.label.TextStyle = fyne.TextStyle{Bold: true}
	renderer.icon = canvas.NewImageFromResource(nil)
	renderer.icon.FillMode = canvas.ImageFillContain
	renderer.icon.Hide()
	renderer.objects = []fyne.CanvasObject{renderer.raster, renderer.label, renderer.icon}
	return renderer
}

// draw paints the machine at pixel resolution.
func (renderer *buttonRenderer) draw(width, height int) image.Image {
	size := renderer.button.Size()
	scale := float32(1)
	if size.Width > 0 && width > 0 {
		scale = float32(width) / size.Width
	}
	surface := render.NewImageSurface(width, height, scale)
	renderer.button.machine.Render(surface)
	return surface.Image
}

func (renderer *buttonRenderer) Layout(size fyne.Size) {
	renderer.raster.Move(fyne.NewPos(0, 0))
	renderer.raster.Resize(size)

	renderer.button.machine.OnSize(size.Width, size.Height)
	renderer.button.syncDriver()
	renderer.syncLabel()
	renderer.layoutContent(size)
}

func (renderer *buttonRenderer) layoutContent(size fyne.Size) {
	labelSize := renderer.label.MinSize()
	renderer.label.Resize(labelSize)
	renderer.label.Move(fyne.NewPos((size.Width-labelSize.Width)/2, (size.Height-labelSize.Height)/2))

	side := size.Height - theme.Padding()*2
	if side < 0 {
		side = 0
	}
	renderer.icon.Resize(fyne.NewSquareSize(side))
	renderer.icon.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
}

func (renderer *buttonRenderer) MinSize() fyne.Size {
	padding := theme.Padding()
	labelSize := fyne.MeasureText(renderer.longestText(), theme.TextSize(), renderer.label.TextStyle)
	return fyne.NewSize(labelSize.Width+padding*6, labelSize.Height+padding*4)
}

// longestText keeps the minimum size stable across state changes.
func (renderer *buttonRenderer) longestText() string {
	longest := renderer.button.text
	for _, text := range renderer.button.texts {
		if len(text) > len(longest) {
			longest = text
		}
	}
	return longest
}

func (renderer *buttonRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *buttonRenderer) Refresh() {
	renderer.syncLabel()
	renderer.layoutContent(renderer.button.Size())
	renderer.raster.Refresh()
	renderer.label.Refresh()
	renderer.icon.Refresh()
}

// syncLabel shows the icon, the text or nothing while a morph runs.
func (renderer *buttonRenderer) syncLabel() {
	button := renderer.button
	renderer.label.Text = button.text
	renderer.icon.Resource = button.icon
	switch {
	case button.machine.Morphing():
		renderer.label.Hide()
		renderer.icon.Hide()
	case button.icon != nil:
		renderer.label.Hide()
		renderer.icon.Show()
	case button.text == "":
		renderer.label.Hide()
		renderer.icon.Hide()
	default:
		renderer.label.Show()
		renderer.icon.Hide()
	}
}

func (renderer *buttonRenderer) Destroy() {
	renderer.button.driver.Stop()
	renderer.button.machine.Destroy()
}
