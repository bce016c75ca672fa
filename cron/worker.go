package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"churchms/config"
	"churchms/services"
)

const TypeCalendarPrecompute = "calendar:precompute"

type precomputePayload struct {
	MonthsAhead int `json:"monthsAhead"`
}

// InitPrecomputeWorker runs the async worker in background. The worker warms
// the availability cache with occurrence calendars for upcoming months so the
// appointment calendar renders from cache instead of hitting the backend.
func InitPrecomputeWorker(avail services.AvailabilityService, schedules services.ScheduleSource) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCalendarPrecompute, handlePrecomputeTask(avail, schedules))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Enqueue the precompute task hourly.
	go schedulePrecompute(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[PrecomputeWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PrecomputeWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PrecomputeWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// schedulePrecompute enqueues one warm-up task immediately and then hourly.
func schedulePrecompute(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	enqueue := func() {
		payload, err := json.Marshal(precomputePayload{
			MonthsAhead: config.AppConfig.PrecomputeMonthsAhead,
		})
		if err != nil {
			log.Printf("[PrecomputeWorker] Failed to marshal payload: %v", err)
			return
		}
		task := asynq.NewTask(TypeCalendarPrecompute, payload)
		if _, err := client.Enqueue(task); err != nil {
			log.Printf("[PrecomputeWorker] Failed to enqueue precompute task: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		enqueue()
	}
}

func handlePrecomputeTask(avail services.AvailabilityService, schedules services.ScheduleSource) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p precomputePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PrecomputeHandler] Invalid payload: %v", err)
			return err
		}
		if p.MonthsAhead <= 0 {
			p.MonthsAhead = 1
		}

		defs, err := schedules.ListSchedules(ctx)
		if err != nil {
			log.Printf("[PrecomputeHandler] Failed to list schedules: %v", err)
			return err
		}

		now := time.Now()
		for _, def := range defs {
			for i := 0; i < p.MonthsAhead; i++ {
				target := now.AddDate(0, i, 0)
				// GetMonthOccurrences populates the shared cache as a side effect.
				if _, err := avail.GetMonthOccurrences(ctx, def.ScheduleID, target.Year(), target.Month()); err != nil {
					log.Printf("[PrecomputeHandler] Failed to precompute %s %04d-%02d: %v",
						def.ScheduleID, target.Year(), int(target.Month()), err)
				}
			}
		}

		log.Printf("[PrecomputeHandler] Warmed occurrence calendars for %d schedules, %d months ahead",
			len(defs), p.MonthsAhead)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PrecomputeWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
