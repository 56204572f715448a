package reactable

// BatchSizeData carries the new geometry batch capacity.
type BatchSizeData struct {
	batchSize uint32
}

// NewBatchSizeData wraps a batch capacity for announcement.
func NewBatchSizeData(batchSize uint32) BatchSizeData {
	return BatchSizeData{batchSize: batchSize}
}

func (d BatchSizeData) BatchSize() uint32 { return d.batchSize }

// DisposeSoundData identifies a sound that is being destroyed.
type DisposeSoundData struct {
	soundID uint32
}

// NewDisposeSoundData wraps a sound id for announcement.
func NewDisposeSoundData(soundID uint32) DisposeSoundData {
	return DisposeSoundData{soundID: soundID}
}

func (d DisposeSoundData) SoundID() uint32 { return d.soundID }

// DisposeTextureData identifies a texture that is being destroyed.
type DisposeTextureData struct {
	textureID uint32
}

// NewDisposeTextureData wraps a texture id for announcement.
func NewDisposeTextureData(textureID uint32) DisposeTextureData {
	return DisposeTextureData{textureID: textureID}
}

func (d DisposeTextureData) TextureID() uint32 { return d.textureID }

// GLContextData carries the platform's context creation data.
// Subscribers receive the exact value given to NewGLContextData.
type GLContextData struct {
	data any
}

// NewGLContextData wraps platform context data for announcement.
func NewGLContextData(data any) GLContextData {
	return GLContextData{data: data}
}

func (d GLContextData) Data() any { return d.data }

// GLInitData is the payload of the OpenGL initialized signal.
type GLInitData struct {
	initialized bool
}

func (d GLInitData) Initialized() bool { return d.initialized }
