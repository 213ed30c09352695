// Package rgb565 provides the 16-bit RGB565 pixel format of the ILI9325 GRAM.
//
// Each pixel is a 16-bit word, red in the top 5 bits, green in the middle
// 6 bits and blue in the low 5 bits. The controller receives the high byte
// first, so Image stores pixels big-endian:
//
//	Pixel:  (0,0)       (1,0)
//	Color:  0xF800 red  0x07E0 green
//	Bytes:  0xF8 0x00   0x07 0xE0
//
// This package provides:
//
// - RGB565: a color type holding one packed pixel
// - Model: a color model converting standard Go colors to RGB565
// - Image: an image.Image whose Pix can be sent to GRAM unchanged
//
// Example usage:
//
//	img := rgb565.NewImage(image.Rect(0, 0, 320, 240))
//	img.SetRGB565(10, 20, rgb565.New(0xFF, 0x80, 0x00))
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package rgb565
