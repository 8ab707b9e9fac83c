package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Rect program: streaming colored triangles.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectURes int32
	rectBuf  []float32

	// Glow program: additive point sprites for target halos.
	glowProg uint32
	glowVAO  uint32
	glowVBO  uint32
	glowURes int32
	glowBuf  []float32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	glowProg, err := linkProgram(glowVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		glowProg: glowProg,
	}

	// Rect VAO/VBO: per-vertex pos(2) + color(4) = 6 floats, streamed.
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)

	rectStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 1024*6*int(rectStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, rectStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, rectStride, glOffset(2*4))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.rectURes = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	// Glow VAO/VBO: pos(2) + size(1) + color(4) = 7 floats, streamed.
	var gVAO, gVBO uint32
	gl.GenVertexArrays(1, &gVAO)
	gl.GenBuffers(1, &gVBO)
	gl.BindVertexArray(gVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gVBO)

	glowStride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 256*int(glowStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, glowStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aSize
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, glowStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, glowStride, glOffset(3*4))
	r.glowVAO = gVAO
	r.glowVBO = gVBO

	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.glowVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.glowVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.glowProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawRect queues a filled rectangle in screen pixel space.
func (r *Renderer) DrawRect(x, y, w, h float32, col RGB, alpha float32) {
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	r.rectBuf = append(r.rectBuf,
		x, y, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x+w, y+h, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
	)
}

// DrawRectOutline queues a rectangle border of the given thickness.
func (r *Renderer) DrawRectOutline(x, y, w, h, t float32, col RGB, alpha float32) {
	r.DrawRect(x, y, w, t, col, alpha)
	r.DrawRect(x, y+h-t, w, t, col, alpha)
	r.DrawRect(x, y+t, t, h-2*t, col, alpha)
	r.DrawRect(x+w-t, y+t, t, h-2*t, col, alpha)
}

// FlushRects draws all buffered rectangles and clears the buffer.
func (r *Renderer) FlushRects(fbW, fbH int) {
	if len(r.rectBuf) == 0 {
		return
	}
	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Uniform2f(r.rectURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.rectBuf) / 6
	gl.BufferData(gl.ARRAY_BUFFER, len(r.rectBuf)*4, gl.Ptr(r.rectBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.rectBuf = r.rectBuf[:0]
}

// DrawGlow queues an additive radial halo at (x, y). RGB should be
// pre-multiplied by the desired brightness.
func (r *Renderer) DrawGlow(x, y, size float32, col RGB, brightness float32) {
	r.glowBuf = append(r.glowBuf,
		x, y, size,
		float32(col.R)/255.0*brightness,
		float32(col.G)/255.0*brightness,
		float32(col.B)/255.0*brightness,
		1.0,
	)
}

// FlushGlow draws all buffered halos with additive blending.
func (r *Renderer) FlushGlow(fbW, fbH int) {
	if len(r.glowBuf) == 0 {
		return
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	count := len(r.glowBuf) / 7
	gl.BufferData(gl.ARRAY_BUFFER, len(r.glowBuf)*4, gl.Ptr(r.glowBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.glowBuf = r.glowBuf[:0]
}
