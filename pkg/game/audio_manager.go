package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/customslider/pkg/embedded"
	"github.com/decker502/customslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 循环播放背景音乐，音量由音乐滑动条控制
//   - 音效滑动条拖拽结束时按其音量播放一次点击音效
//
// context 为 nil 时（测试、无音频设备）只记录音量，不发声。
type AudioManager struct {
	context *audio.Context
	music   *audio.Player
	click   []byte // 解码后的 PCM（16 位立体声），每次播放新建播放器

	musicVolume float64
	soundVolume float64

	musicSlider string // 控制音乐音量的滑动条 ID
	soundSlider string // 控制音效音量的滑动条 ID
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil
//   - musicSlider / soundSlider: 绑定的滑动条 ID，空串表示不绑定
func NewAudioManager(ctx *audio.Context, musicSlider, soundSlider string) *AudioManager {
	return &AudioManager{
		context:     ctx,
		musicSlider: musicSlider,
		soundSlider: soundSlider,
		musicVolume: 1,
		soundVolume: 1,
	}
}

// audioStream 解码后的可定位 PCM 流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// LoadMusic 加载背景音乐（.wav/.mp3/.ogg）并包装为无限循环
// 没有音频上下文时只校验文件可解码
func (am *AudioManager) LoadMusic(path string) error {
	stream, err := decodeAudio(path)
	if err != nil {
		return err
	}
	if am.context == nil {
		return nil
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("failed to create music player %s: %w", path, err)
	}
	player.SetVolume(am.musicVolume)
	am.music = player
	log.Printf("[AudioManager] Music loaded: %s", path)
	return nil
}

// LoadClick 加载点击音效，解码结果常驻内存
func (am *AudioManager) LoadClick(path string) error {
	stream, err := decodeAudio(path)
	if err != nil {
		return err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read sound effect %s: %w", path, err)
	}
	am.click = pcm
	return nil
}

// PlayMusic 开始（或继续）播放背景音乐
func (am *AudioManager) PlayMusic() bool {
	if am.music == nil {
		return false
	}
	am.music.Play()
	return true
}

// StopMusic 暂停背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// PlayClick 以当前音效音量播放点击音效
func (am *AudioManager) PlayClick() bool {
	if am.context == nil || len(am.click) == 0 || am.soundVolume == 0 {
		return false
	}
	player := am.context.NewPlayerFromBytes(am.click)
	player.SetVolume(am.soundVolume)
	player.Play()
	return true
}

// SetMusicVolume 设置音乐音量并立即应用（0.0 ~ 1.0）
func (am *AudioManager) SetMusicVolume(volume float64) {
	am.musicVolume = utils.Clamp01(volume)
	if am.music != nil {
		am.music.SetVolume(am.musicVolume)
	}
}

// SetSoundVolume 设置音效音量（影响后续播放）
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.soundVolume = utils.Clamp01(volume)
}

// MusicVolume 当前音乐音量
func (am *AudioManager) MusicVolume() float64 {
	return am.musicVolume
}

// SoundVolume 当前音效音量
func (am *AudioManager) SoundVolume() float64 {
	return am.soundVolume
}

// OnSliderValue 滑动条值改变时按 ID 路由到对应音量
func (am *AudioManager) OnSliderValue(id string, value float64) {
	switch {
	case id == "":
	case id == am.musicSlider:
		am.SetMusicVolume(value)
	case id == am.soundSlider:
		am.SetSoundVolume(value)
	}
}

// OnSliderReleased 音效滑动条拖拽结束时试听一次
func (am *AudioManager) OnSliderReleased(id string, value float64) bool {
	if id == "" || id != am.soundSlider {
		return false
	}
	am.SetSoundVolume(value)
	return am.PlayClick()
}

// decodeAudio 从嵌入资源读取音频并按扩展名解码，重采样到 AudioSampleRate
func decodeAudio(path string) (audioStream, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}
