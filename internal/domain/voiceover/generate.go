package voiceover

import (
	"context"
	"strings"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/thoughts"
	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/logger"
)

// GenerateRequest fija imagen y/o género; vacíos se eligen al azar.
type GenerateRequest struct {
	Image  string
	Gender dogs.Gender
}

// Generate arranca en background el pipeline del widget:
// subir foto -> pensamiento -> voz -> Acquire. Dispose lo cancela.
// Los resultados se ven por Snapshot y por notices.
func (s *Session) Generate(req GenerateRequest) error {
	if req.Gender != "" && !req.Gender.Valid() {
		return dogs.ErrInvalidGender
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if s.generating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.generating = true
	s.step = StepUpload
	s.thought = ""
	s.updatedAt = s.now()
	ctx := s.ctx
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			s.generating = false
			s.updatedAt = s.now()
			s.mu.Unlock()
		}()
		s.runPipeline(ctx, req)
	}()
	return nil
}

func (s *Session) runPipeline(ctx context.Context, req GenerateRequest) {
	image := strings.TrimSpace(req.Image)
	if image == "" {
		if picked, ok := chance.Pick(s.rand, demoImages); ok {
			image = picked
		} else {
			image = defaultDemoImage
		}
	}
	gender := req.Gender
	if gender == "" {
		gender = dogs.GenderFemale
		if chance.Coin(s.rand) {
			gender = dogs.GenderMale
		}
	}

	log := s.log.With(logger.Fields{"image": image, "gender": gender})

	// subida simulada
	if err := s.sleeper.Wait(ctx, s.uploadDly); err != nil {
		return
	}
	if !s.advance(StepThinking, func() {
		s.image = image
		s.gender = gender
	}) {
		return
	}

	thought, err := s.generator.GenerateThought(ctx, image, gender)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("thought generation failed", logger.Fields{"error": err})
		s.notices.Push(noticeGeneric)
		return
	}
	if !s.advance(StepVoiced, func() { s.thought = thought }) {
		return
	}

	if err := s.sleeper.Wait(ctx, s.voiceDly); err != nil {
		return
	}

	voice, err := s.generator.GenerateVoice(ctx, thought, gender)
	if ctx.Err() != nil {
		return
	}
	if err != nil || strings.TrimSpace(voice.SampleURL) == "" {
		log.Warn("voice generation failed, using default sample", logger.Fields{"error": err})
		_ = s.Acquire(ctx, thoughts.DefaultVoiceSample)
		s.notices.Push(noticeVoiceFailed)
		return
	}

	if err := s.Acquire(ctx, voice.SampleURL); err != nil {
		return
	}
	log.Info("voice generated", logger.Fields{"source": voice.SampleURL})
	s.notices.Push(noticeVoiceGenerated)
}

// advance aplica fn y pasa al step si la sesión sigue viva.
func (s *Session) advance(step Step, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return false
	}
	fn()
	s.step = step
	s.updatedAt = s.now()
	return true
}
