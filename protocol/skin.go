package protocol

import "math"

// SkinImage is a raw RGBA pixel buffer with explicit dimensions. Bedrock
// carries width/height on the wire for every modern skin/cape image; legacy
// (pre-1.13.0) skins carry only a flat pixel buffer and the dimensions must
// be inferred from its length, see SkinImageFromLegacy.
type SkinImage struct {
	Width, Height uint32
	Pixels        []byte
}

// SkinAnimation is one frame-animated overlay layered on top of the base
// skin image.
type SkinAnimation struct {
	Image          SkinImage
	AnimationType  int32
	FrameCount     float32
	ExpressionType int32
}

// PersonaPiece is one equippable persona-skin component (e.g. a hair or
// shirt piece).
type PersonaPiece struct {
	PieceID, PieceType, PackID string
	Default                    bool
	ProductID                  string
}

// PersonaPieceTintColor carries the four tint-slot colours for one
// persona piece type.
type PersonaPieceTintColor struct {
	PieceType string
	Colors    [4]string
}

// SkinData is the canonical in-memory skin blob. ReadSkin always returns a
// complete value of this shape, including on legacy (pre-1.13.0) protocols,
// where the wire carries a cut-down representation that is reconstructed
// into this shape at decode time — there is no later post-fixup step.
type SkinData struct {
	SkinID            string
	ResourcePatch     []byte
	SkinImage         SkinImage
	Animations        []SkinAnimation
	CapeImage         SkinImage
	GeometryName      string
	GeometryData      []byte
	AnimationData     []byte
	PremiumSkin       bool
	PersonaSkin       bool
	CapeOnClassicSkin bool
	CapeID            string
	FullID            string
	ArmSize           string
	SkinColor         string
	PersonaPieces     []PersonaPiece
	PieceTintColors   []PersonaPieceTintColor
}

// legacyImageDims maps known legacy pixel-buffer byte lengths to their
// (width, height); Bedrock only ever shipped a handful of fixed legacy skin
// resolutions, so this table covers them exactly. Anything else falls back
// to a square guess.
var legacyImageDims = map[int][2]uint32{
	64 * 32 * 4:  {64, 32},
	64 * 64 * 4:  {64, 64},
	128 * 64 * 4: {128, 64},
	128 * 128 * 4: {128, 128},
}

// SkinImageFromLegacy reconstructs a SkinImage from a flat legacy pixel
// buffer that carried no explicit dimensions on the wire.
func SkinImageFromLegacy(pixels []byte) SkinImage {
	if dims, ok := legacyImageDims[len(pixels)]; ok {
		return SkinImage{Width: dims[0], Height: dims[1], Pixels: pixels}
	}
	side := uint32(math.Sqrt(float64(len(pixels) / 4)))
	return SkinImage{Width: side, Height: side, Pixels: pixels}
}

func (r *Reader) readSkinImage(v *SkinImage) error {
	var w, h uint32
	if err := r.ReadVarUint32(&w); err != nil {
		return err
	}
	if err := r.ReadVarUint32(&h); err != nil {
		return err
	}
	var pixels []byte
	if err := r.ReadBytes(&pixels); err != nil {
		return err
	}
	v.Width, v.Height, v.Pixels = w, h, pixels
	return nil
}

func (w *Writer) writeSkinImage(v SkinImage) error {
	if err := w.WriteVarUint32(v.Width); err != nil {
		return err
	}
	if err := w.WriteVarUint32(v.Height); err != nil {
		return err
	}
	return w.WriteBytes(v.Pixels)
}

func (r *Reader) readSkinAnimation(v *SkinAnimation) error {
	if err := r.readSkinImage(&v.Image); err != nil {
		return err
	}
	if err := r.ReadLInt32(&v.AnimationType); err != nil {
		return err
	}
	if err := r.ReadLFloat32(&v.FrameCount); err != nil {
		return err
	}
	return r.ReadLInt32(&v.ExpressionType)
}

func (w *Writer) writeSkinAnimation(v SkinAnimation) error {
	if err := w.writeSkinImage(v.Image); err != nil {
		return err
	}
	if err := w.WriteLInt32(v.AnimationType); err != nil {
		return err
	}
	if err := w.WriteLFloat32(v.FrameCount); err != nil {
		return err
	}
	return w.WriteLInt32(v.ExpressionType)
}

func (r *Reader) readPersonaPiece(v *PersonaPiece) error {
	if err := r.ReadString(&v.PieceID); err != nil {
		return err
	}
	if err := r.ReadString(&v.PieceType); err != nil {
		return err
	}
	if err := r.ReadString(&v.PackID); err != nil {
		return err
	}
	if err := r.ReadBool(&v.Default); err != nil {
		return err
	}
	return r.ReadString(&v.ProductID)
}

func (w *Writer) writePersonaPiece(v PersonaPiece) error {
	if err := w.WriteString(v.PieceID); err != nil {
		return err
	}
	if err := w.WriteString(v.PieceType); err != nil {
		return err
	}
	if err := w.WriteString(v.PackID); err != nil {
		return err
	}
	if err := w.WriteBool(v.Default); err != nil {
		return err
	}
	return w.WriteString(v.ProductID)
}

func (r *Reader) readPersonaPieceTintColor(v *PersonaPieceTintColor) error {
	if err := r.ReadString(&v.PieceType); err != nil {
		return err
	}
	var n uint32
	if err := r.ReadVarUint32(&n); err != nil {
		return err
	}
	for i := uint32(0); i < n && i < 4; i++ {
		if err := r.ReadString(&v.Colors[i]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writePersonaPieceTintColor(v PersonaPieceTintColor) error {
	if err := w.WriteString(v.PieceType); err != nil {
		return err
	}
	if err := w.WriteVarUint32(uint32(len(v.Colors))); err != nil {
		return err
	}
	for _, c := range v.Colors {
		if err := w.WriteString(c); err != nil {
			return err
		}
	}
	return nil
}

// ReadSkin decodes a complete skin blob. On protocols older than
// Proto1_13_0, the wire carries only a legacy 5-string representation
// (skinId, skinPixels, capePixels, geometryName, geometryJson); ReadSkin
// reconstructs the canonical SkinData from it with an empty resource patch,
// per the legacy-skin design invariant.
func (r *Reader) ReadSkin(v *SkinData) error {
	if r.protocolID < Proto1_13_0 {
		var skinPixels, capePixels []byte
		var geometryJSON string
		if err := r.ReadString(&v.SkinID); err != nil {
			return err
		}
		if err := r.ReadBytes(&skinPixels); err != nil {
			return err
		}
		if err := r.ReadBytes(&capePixels); err != nil {
			return err
		}
		if err := r.ReadString(&v.GeometryName); err != nil {
			return err
		}
		if err := r.ReadString(&geometryJSON); err != nil {
			return err
		}
		v.ResourcePatch = nil
		v.SkinImage = SkinImageFromLegacy(skinPixels)
		v.CapeImage = SkinImageFromLegacy(capePixels)
		v.GeometryData = []byte(geometryJSON)
		return nil
	}

	if err := r.ReadString(&v.SkinID); err != nil {
		return err
	}
	if err := r.ReadBytes(&v.ResourcePatch); err != nil {
		return err
	}
	if err := r.readSkinImage(&v.SkinImage); err != nil {
		return err
	}

	var animCount uint32
	if err := r.ReadVarUint32(&animCount); err != nil {
		return err
	}
	v.Animations = make([]SkinAnimation, animCount)
	for i := range v.Animations {
		if err := r.readSkinAnimation(&v.Animations[i]); err != nil {
			return err
		}
	}

	if err := r.readSkinImage(&v.CapeImage); err != nil {
		return err
	}
	if err := r.ReadBytes(&v.GeometryData); err != nil {
		return err
	}
	if err := r.ReadBytes(&v.AnimationData); err != nil {
		return err
	}
	if err := r.ReadBool(&v.PremiumSkin); err != nil {
		return err
	}
	if err := r.ReadBool(&v.PersonaSkin); err != nil {
		return err
	}
	if err := r.ReadBool(&v.CapeOnClassicSkin); err != nil {
		return err
	}
	if err := r.ReadString(&v.CapeID); err != nil {
		return err
	}
	if err := r.ReadString(&v.FullID); err != nil {
		return err
	}
	if err := r.ReadString(&v.ArmSize); err != nil {
		return err
	}
	if err := r.ReadString(&v.SkinColor); err != nil {
		return err
	}

	var pieceCount uint32
	if err := r.ReadVarUint32(&pieceCount); err != nil {
		return err
	}
	v.PersonaPieces = make([]PersonaPiece, pieceCount)
	for i := range v.PersonaPieces {
		if err := r.readPersonaPiece(&v.PersonaPieces[i]); err != nil {
			return err
		}
	}

	var tintCount uint32
	if err := r.ReadVarUint32(&tintCount); err != nil {
		return err
	}
	v.PieceTintColors = make([]PersonaPieceTintColor, tintCount)
	for i := range v.PieceTintColors {
		if err := r.readPersonaPieceTintColor(&v.PieceTintColors[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteSkin encodes v, mirroring ReadSkin's version gate. Writing a legacy
// blob (proto < Proto1_13_0) discards resource patch, animations and
// persona data, since the legacy wire format has no room for them.
func (w *Writer) WriteSkin(v SkinData) error {
	if w.protocolID < Proto1_13_0 {
		if err := w.WriteString(v.SkinID); err != nil {
			return err
		}
		if err := w.WriteBytes(v.SkinImage.Pixels); err != nil {
			return err
		}
		if err := w.WriteBytes(v.CapeImage.Pixels); err != nil {
			return err
		}
		if err := w.WriteString(v.GeometryName); err != nil {
			return err
		}
		return w.WriteString(string(v.GeometryData))
	}

	if err := w.WriteString(v.SkinID); err != nil {
		return err
	}
	if err := w.WriteBytes(v.ResourcePatch); err != nil {
		return err
	}
	if err := w.writeSkinImage(v.SkinImage); err != nil {
		return err
	}

	if err := w.WriteVarUint32(uint32(len(v.Animations))); err != nil {
		return err
	}
	for _, a := range v.Animations {
		if err := w.writeSkinAnimation(a); err != nil {
			return err
		}
	}

	if err := w.writeSkinImage(v.CapeImage); err != nil {
		return err
	}
	if err := w.WriteBytes(v.GeometryData); err != nil {
		return err
	}
	if err := w.WriteBytes(v.AnimationData); err != nil {
		return err
	}
	if err := w.WriteBool(v.PremiumSkin); err != nil {
		return err
	}
	if err := w.WriteBool(v.PersonaSkin); err != nil {
		return err
	}
	if err := w.WriteBool(v.CapeOnClassicSkin); err != nil {
		return err
	}
	if err := w.WriteString(v.CapeID); err != nil {
		return err
	}
	if err := w.WriteString(v.FullID); err != nil {
		return err
	}
	if err := w.WriteString(v.ArmSize); err != nil {
		return err
	}
	if err := w.WriteString(v.SkinColor); err != nil {
		return err
	}

	if err := w.WriteVarUint32(uint32(len(v.PersonaPieces))); err != nil {
		return err
	}
	for _, p := range v.PersonaPieces {
		if err := w.writePersonaPiece(p); err != nil {
			return err
		}
	}

	if err := w.WriteVarUint32(uint32(len(v.PieceTintColors))); err != nil {
		return err
	}
	for _, t := range v.PieceTintColors {
		if err := w.writePersonaPieceTintColor(t); err != nil {
			return err
		}
	}
	return nil
}
